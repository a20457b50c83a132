package events

import "github.com/atomicstack/ghost-esp-control/internal/logging"

type UITracer struct{}

type InputTracer struct{}

type ConfirmTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Input   = InputTracer{}
	Confirm = ConfirmTracer{}
	Command = CommandTracer{}
)

func (UITracer) ViewSwitch(from, to, previous string) {
	logging.Trace("view.switch", map[string]interface{}{
		"from":     from,
		"to":       to,
		"previous": previous,
	})
}

func (UITracer) MenuEnter(view, itemID, label string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"view":  view,
		"item":  itemID,
		"label": label,
	})
}

func (UITracer) MenuCursor(view string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"view": view, "cursor": cursor})
}

func (UITracer) Cycle(table string, index int, label string) {
	logging.Trace("menu.cycle", map[string]interface{}{"table": table, "index": index, "label": label})
}

func (UITracer) Back(view, target string) {
	logging.Trace("menu.back", map[string]interface{}{"view": view, "target": target})
}

func (UITracer) Details(view, header string) {
	logging.Trace("menu.details", map[string]interface{}{"view": view, "header": header})
}

func (InputTracer) Prompt(view, prompt, stage string) {
	logging.Trace("input.prompt", map[string]interface{}{"view": view, "prompt": prompt, "stage": stage})
}

func (InputTracer) Submit(stage string, length int) {
	logging.Trace("input.submit", map[string]interface{}{"stage": stage, "length": length})
}

func (InputTracer) Cancel(stage string) {
	logging.Trace("input.cancel", map[string]interface{}{"stage": stage})
}

func (ConfirmTracer) Show(token, header string) {
	logging.Trace("confirm.show", map[string]interface{}{"token": token, "header": header})
}

func (ConfirmTracer) Resolve(token string, ok bool) {
	logging.Trace("confirm.resolve", map[string]interface{}{"token": token, "ok": ok})
}

func (ConfirmTracer) Stale(token string) {
	logging.Trace("confirm.stale", map[string]interface{}{"token": token})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Sent(id, line string) {
	logging.Trace("command.sent", map[string]interface{}{"id": id, "line": line})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
