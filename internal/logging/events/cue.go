package events

import "github.com/atomicstack/lookbook/internal/logging"

type CueTracer struct{}

var Cue = CueTracer{}

func (CueTracer) Dropped(reason string) {
	logging.Trace("cue.dropped", map[string]interface{}{"reason": reason})
}

func (CueTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("cue.error", map[string]interface{}{"error": err.Error()})
}
