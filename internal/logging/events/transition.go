package events

import "github.com/atomicstack/lookbook/internal/logging"

type TransitionTracer struct{}

var Transition = TransitionTracer{}

func (TransitionTracer) Start(from, to string) {
	logging.Trace("transition.start", map[string]interface{}{"from": from, "to": to})
}

// Supersede records a retarget that replaced an animation still in flight.
func (TransitionTracer) Supersede(displayed, previousTarget, target string) {
	logging.Trace("transition.supersede", map[string]interface{}{
		"displayed": displayed,
		"previous":  previousTarget,
		"target":    target,
	})
}

func (TransitionTracer) Settled(key string) {
	logging.Trace("transition.settled", map[string]interface{}{"key": key})
}

func (TransitionTracer) Morph(key string, from, to [4]int) {
	logging.Trace("transition.morph", map[string]interface{}{"key": key, "from": from, "to": to})
}
