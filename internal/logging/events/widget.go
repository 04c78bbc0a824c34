package events

import "github.com/atomicstack/popup-select/internal/logging"

type WidgetTracer struct{}

type FilterTracer struct{}

type SourceTracer struct{}

var (
	Widget = WidgetTracer{}
	Filter = FilterTracer{}
	Source = SourceTracer{}
)

func (WidgetTracer) Toggle(open bool, focus int) {
	logging.Trace("widget.toggle", map[string]interface{}{"open": open, "focus": focus})
}

func (WidgetTracer) Key(key string, open bool) {
	logging.Trace("widget.key", map[string]interface{}{"key": key, "open": open})
}

func (WidgetTracer) Cursor(focus int) {
	logging.Trace("widget.cursor", map[string]interface{}{"focus": focus})
}

func (WidgetTracer) Select(value string) {
	logging.Trace("widget.select", map[string]interface{}{"value": value})
}

func (FilterTracer) Changed(query string, matches int) {
	logging.Trace("filter.changed", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (SourceTracer) Reloaded(count int) {
	logging.Trace("source.reload", map[string]interface{}{"options": count})
}

func (SourceTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"error": err.Error()})
}
