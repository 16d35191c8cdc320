// Package eventbridge builds request descriptors for the AWS EventBridge
// eventing API and the EventBridge Scheduler API, and ships a thin SigV4
// client to execute them. Operation constructors are pure: they shape
// methods, paths, headers and bodies but never touch the network.
package eventbridge

// Service identifies which remote API family a request is sent to. It selects
// the endpoint host and the SigV4 signing name; it does not affect the
// x-amz-target header, which always carries the AWSEvents prefix.
type Service string

const (
	// ServiceEvents is the event-bus management and eventing API.
	ServiceEvents Service = "events"
	// ServiceScheduler is the schedule-management API.
	ServiceScheduler Service = "scheduler"
)

// Header is a single request header. Headers are kept as an ordered slice
// rather than a map so descriptors serialize and compare deterministically.
type Header struct {
	Name  string
	Value string
}

// Request is the fully-assembled, pre-send form of one API call. It is a plain
// value: constructors build it once and nothing mutates it afterwards. Hand it
// to Client.Do (or any other executor) to put it on the wire.
type Request struct {
	Service Service
	Method  string // empty means POST; the executor applies the default
	Path    string
	Headers []Header
	Body    map[string]any
}

const (
	// targetPrefix is the service prefix carried by every x-amz-target value,
	// schedule operations included.
	targetPrefix = "AWSEvents"

	// jsonRPCContentType is the content type for this API family's
	// JSON-RPC style protocol.
	jsonRPCContentType = "application/x-amz-json-1.1"

	headerTarget      = "x-amz-target"
	headerContentType = "content-type"
)

// opSpec describes the per-operation shaping rules: which service family the
// operation belongs to, the HTTP method, and whether the path is the service
// root or addresses a schedule by name. The target header value is derived
// from the operation's symbolic name with the same transform used for body
// keys, which reproduces the wire values verbatim (e.g. "create_event_bus" →
// "AWSEvents.CreateEventBus").
type opSpec struct {
	name         string // symbolic operation name
	service      Service
	method       string
	schedulePath bool // path is /schedules/{Name} instead of "/"
}

var (
	opListEventBuses   = opSpec{name: "list_event_buses", service: ServiceEvents, method: "POST"}
	opCreateEventBus   = opSpec{name: "create_event_bus", service: ServiceEvents, method: "POST"}
	opDeleteEventBus   = opSpec{name: "delete_event_bus", service: ServiceEvents, method: "POST"}
	opDescribeEventBus = opSpec{name: "describe_event_bus", service: ServiceEvents, method: "POST"}
	opPutEvents        = opSpec{name: "put_events", service: ServiceEvents, method: "POST"}
	opCreateSchedule   = opSpec{name: "create_schedule", service: ServiceScheduler, method: "POST", schedulePath: true}
	opDeleteSchedule   = opSpec{name: "delete_schedule", service: ServiceScheduler, method: "DELETE", schedulePath: true}
)

// target returns the x-amz-target value for the operation.
func (op opSpec) target() string {
	return targetPrefix + "." + camelKey(op.name)
}

// request assembles the descriptor for op around an already-built body.
// The path is derived after the body because schedule paths embed the body's
// Name field literally (no escaping; callers supply path-safe names).
func (op opSpec) request(body map[string]any) Request {
	path := "/"
	if op.schedulePath {
		name, _ := body["Name"].(string)
		path = "/schedules/" + name
	}
	return Request{
		Service: op.service,
		Method:  op.method,
		Path:    path,
		Headers: []Header{
			{Name: headerTarget, Value: op.target()},
			{Name: headerContentType, Value: jsonRPCContentType},
		},
		Body: body,
	}
}
