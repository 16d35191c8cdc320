package eventbridge

// ListEventBuses builds a request listing the account's event buses.
// Supported options include name_prefix, next_token and limit.
func ListEventBuses(opts ...Option) Request {
	return opListEventBuses.request(buildBody(nil, opts))
}

// CreateEventBus builds a request creating a custom event bus with the given
// name. Options such as event_source_name or tags ride along in the body.
func CreateEventBus(name string, opts ...Option) Request {
	return opCreateEventBus.request(buildBody(map[string]any{"Name": name}, opts))
}

// DeleteEventBus builds a request deleting the named event bus.
func DeleteEventBus(name string, opts ...Option) Request {
	return opDeleteEventBus.request(buildBody(map[string]any{"Name": name}, opts))
}

// DescribeEventBus builds a request describing an event bus. With no options
// the remote API describes the account's default bus; pass Opt("name", ...)
// to address another one.
func DescribeEventBus(opts ...Option) Request {
	return opDescribeEventBus.request(buildBody(nil, opts))
}

// PutEvents builds a request publishing a batch of event entries. Each entry
// is normalized independently and placed under the body's "Entries" key;
// top-level options become siblings of "Entries".
//
// Example:
//
//	eventbridge.PutEvents([]eventbridge.Entry{
//	    {eventbridge.Opt("detail_type", "order"), eventbridge.Opt("source", "shop")},
//	})
//	// body: {"Entries": [{"DetailType": "order", "Source": "shop"}]}
func PutEvents(entries []Entry, opts ...Option) Request {
	normalized := make([]map[string]any, len(entries))
	for i, entry := range entries {
		normalized[i] = Normalize(entry...)
	}
	return opPutEvents.request(buildBody(map[string]any{"Entries": normalized}, opts))
}

// CreateSchedule builds a request creating the named schedule on the
// scheduler service. It is sent as POST /schedules/{name}. The remote API
// expects at least schedule_expression, flexible_time_window and target
// options; none are validated here.
func CreateSchedule(name string, opts ...Option) Request {
	return opCreateSchedule.request(buildBody(map[string]any{"Name": name}, opts))
}

// DeleteSchedule builds a request deleting the named schedule, sent as
// DELETE /schedules/{name}.
func DeleteSchedule(name string, opts ...Option) Request {
	return opDeleteSchedule.request(buildBody(map[string]any{"Name": name}, opts))
}
