// Package command contains the set of Dockerfile instruction keywords in
// their canonical uppercase form.
package command

const (
	Add         = "ADD"
	Arg         = "ARG"
	Cmd         = "CMD"
	Copy        = "COPY"
	Entrypoint  = "ENTRYPOINT"
	Env         = "ENV"
	Expose      = "EXPOSE"
	From        = "FROM"
	Healthcheck = "HEALTHCHECK"
	Label       = "LABEL"
	Maintainer  = "MAINTAINER"
	Onbuild     = "ONBUILD"
	Run         = "RUN"
	Shell       = "SHELL"
	Stopsignal  = "STOPSIGNAL"
	User        = "USER"
	Volume      = "VOLUME"
	Workdir     = "WORKDIR"
)

// Commands is the default keyword whitelist, ordered as documented in the
// Dockerfile reference.
var Commands = []string{
	Add,
	Arg,
	Cmd,
	Copy,
	Entrypoint,
	Env,
	Expose,
	From,
	Healthcheck,
	Label,
	Maintainer,
	Onbuild,
	Run,
	Shell,
	Stopsignal,
	User,
	Volume,
	Workdir,
}
