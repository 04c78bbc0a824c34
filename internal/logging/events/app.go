package events

import "github.com/atomicstack/popup-select/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Done(value string, cancelled bool) {
	logging.Trace("app.done", map[string]interface{}{"value": value, "cancelled": cancelled})
}
