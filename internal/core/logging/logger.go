package logging

import "github.com/rs/zerolog"

// Component derives a child logger carrying a component identifier under the
// "cmp" key. The context hook is installed so user/todo IDs attached to a
// request context show up on every event.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.Hook(ContextHook{}).With().Str("cmp", name).Logger()
}
