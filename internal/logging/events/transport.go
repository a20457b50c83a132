package events

import "github.com/atomicstack/ghost-esp-control/internal/logging"

type TransportTracer struct{}

type CaptureTracer struct{}

var (
	Transport = TransportTracer{}
	Capture   = CaptureTracer{}
)

func (TransportTracer) Open(kind, address string) {
	logging.Trace("transport.open", map[string]interface{}{"kind": kind, "address": address})
}

func (TransportTracer) Close(address string) {
	logging.Trace("transport.close", map[string]interface{}{"address": address})
}

func (TransportTracer) Write(n int) {
	logging.Trace("transport.write", map[string]interface{}{"bytes": n})
}

func (TransportTracer) ReadError(err error) {
	if err == nil {
		return
	}
	logging.Trace("transport.read-error", map[string]interface{}{"error": err.Error()})
}

func (CaptureTracer) Open(path string) {
	logging.Trace("capture.open", map[string]interface{}{"path": path})
}

func (CaptureTracer) OpenFailed(prefix, folder string, err error) {
	payload := map[string]interface{}{"prefix": prefix, "folder": folder}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("capture.open-failed", payload)
}

func (CaptureTracer) Close(path string, written int64) {
	logging.Trace("capture.close", map[string]interface{}{"path": path, "bytes": written})
}
