package events

import "github.com/atomicstack/lookbook/internal/logging"

type UITracer struct{}

type PromptTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Prompt  = PromptTracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}

func (UITracer) Click(x, y int, target string) {
	logging.Trace("ui.click", map[string]interface{}{"x": x, "y": y, "target": target})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (PromptTracer) Open() {
	logging.Trace("prompt.open", nil)
}

func (PromptTracer) Cancel(query string) {
	logging.Trace("prompt.cancel", map[string]interface{}{"query": query})
}

func (PromptTracer) Submit(query string, index int) {
	logging.Trace("prompt.submit", map[string]interface{}{"query": query, "index": index})
}

func (CommandTracer) Queue(action string) {
	logging.Trace("command.queue", map[string]interface{}{"action": action})
}

func (CommandTracer) Skip(action string) {
	logging.Trace("command.skip", map[string]interface{}{"action": action})
}

func (CommandTracer) Result(action string, index int) {
	logging.Trace("command.result", map[string]interface{}{"action": action, "index": index})
}
