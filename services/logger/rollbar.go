package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/Radiyassin/login-campus-connect/core"
)

type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// split separates the signed-in core.Identity (if any) from the other args.
// expected fmt: msg | error, map[string]interface{}, core.Identity
func split(args []interface{}) (*core.Identity, []interface{}) {
	var ident *core.Identity
	rest := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if id, ok := arg.(core.Identity); ok {
			if ident == nil { // only keep one Identity
				ident = &id
			}
			continue
		}
		rest = append(rest, arg)
	}
	return ident, rest
}

func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	ident, rest := split(args)
	if ident != nil {
		rollbar.SetPerson(ident.Email, ident.Name, ident.Email)
	} else {
		rollbar.ClearPerson()
	}
	return append([]interface{}{msg}, rest...)
}

func (l RollbarLogger) print(msg string, args []interface{}) {
	ident, rest := split(args)
	if ident != nil {
		msg += " [" + ident.Role + ":" + ident.Email + "]"
	}
	l.std.Println(msg)
	for _, arg := range rest {
		l.std.Printf("%+v\n", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	l.print(msg, args)
	l.std.Fatal(msg)
}
