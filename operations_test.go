package eventbridge

import (
	"reflect"
	"testing"
)

// headerValue returns the first header with the given name, or "".
func headerValue(req Request, name string) string {
	for _, h := range req.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

func TestTargetHeaders(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"list event buses", ListEventBuses(), "AWSEvents.ListEventBuses"},
		{"create event bus", CreateEventBus("b"), "AWSEvents.CreateEventBus"},
		{"delete event bus", DeleteEventBus("b"), "AWSEvents.DeleteEventBus"},
		{"describe event bus", DescribeEventBus(), "AWSEvents.DescribeEventBus"},
		{"put events", PutEvents(nil), "AWSEvents.PutEvents"},
		{"create schedule", CreateSchedule("s"), "AWSEvents.CreateSchedule"},
		{"delete schedule", DeleteSchedule("s"), "AWSEvents.DeleteSchedule"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headerValue(tt.req, "x-amz-target"); got != tt.want {
				t.Errorf("x-amz-target = %q, want %q", got, tt.want)
			}
			if got := headerValue(tt.req, "content-type"); got != "application/x-amz-json-1.1" {
				t.Errorf("content-type = %q, want application/x-amz-json-1.1", got)
			}
		})
	}
}

func TestCreateEventBus(t *testing.T) {
	req := CreateEventBus("new-bus")
	if req.Service != ServiceEvents {
		t.Errorf("service = %q, want %q", req.Service, ServiceEvents)
	}
	if req.Method != "POST" {
		t.Errorf("method = %q, want POST", req.Method)
	}
	if req.Path != "/" {
		t.Errorf("path = %q, want /", req.Path)
	}
	want := map[string]any{"Name": "new-bus"}
	if !reflect.DeepEqual(req.Body, want) {
		t.Errorf("body = %v, want %v", req.Body, want)
	}
}

func TestListEventBusesOptions(t *testing.T) {
	req := ListEventBuses(Opt("name_prefix", "ops-"), Opt("limit", 10))
	want := map[string]any{"NamePrefix": "ops-", "Limit": 10}
	if !reflect.DeepEqual(req.Body, want) {
		t.Errorf("body = %v, want %v", req.Body, want)
	}
}

func TestDescribeEventBusDefaultsToEmptyBody(t *testing.T) {
	req := DescribeEventBus()
	if len(req.Body) != 0 {
		t.Errorf("body = %v, want empty", req.Body)
	}
	if req.Body == nil {
		t.Error("body is nil, want empty map")
	}
}

func TestPutEvents(t *testing.T) {
	req := PutEvents([]Entry{
		{Opt("detail_type", "order")},
		{Opt("detail_type", "refund")},
	})
	want := map[string]any{
		"Entries": []map[string]any{
			{"DetailType": "order"},
			{"DetailType": "refund"},
		},
	}
	if !reflect.DeepEqual(req.Body, want) {
		t.Errorf("body = %v, want %v", req.Body, want)
	}
}

func TestPutEventsTopLevelOptionsAreSiblings(t *testing.T) {
	req := PutEvents(
		[]Entry{{Opt("source", "shop"), Opt("detail_type", "order")}},
		Opt("endpoint_id", "abc123"),
	)
	want := map[string]any{
		"Entries":    []map[string]any{{"Source": "shop", "DetailType": "order"}},
		"EndpointId": "abc123",
	}
	if !reflect.DeepEqual(req.Body, want) {
		t.Errorf("body = %v, want %v", req.Body, want)
	}
}

func TestCreateSchedule(t *testing.T) {
	req := CreateSchedule("new-schedule", Opt("flexible_time_window", map[string]any{"mode": "OFF"}))
	if req.Service != ServiceScheduler {
		t.Errorf("service = %q, want %q", req.Service, ServiceScheduler)
	}
	if req.Method != "POST" {
		t.Errorf("method = %q, want POST", req.Method)
	}
	if req.Path != "/schedules/new-schedule" {
		t.Errorf("path = %q, want /schedules/new-schedule", req.Path)
	}
	want := map[string]any{
		"Name":               "new-schedule",
		"FlexibleTimeWindow": map[string]any{"mode": "OFF"},
	}
	if !reflect.DeepEqual(req.Body, want) {
		t.Errorf("body = %v, want %v", req.Body, want)
	}
}

func TestDeleteSchedule(t *testing.T) {
	req := DeleteSchedule("old-schedule")
	if req.Service != ServiceScheduler {
		t.Errorf("service = %q, want %q", req.Service, ServiceScheduler)
	}
	if req.Method != "DELETE" {
		t.Errorf("method = %q, want DELETE", req.Method)
	}
	if req.Path != "/schedules/old-schedule" {
		t.Errorf("path = %q, want /schedules/old-schedule", req.Path)
	}
}

// A colliding option cannot rename the resource: the positional argument is
// authoritative for Name, and the path follows the body.
func TestRequiredNameBeatsCollidingOption(t *testing.T) {
	req := CreateSchedule("real", Opt("name", "impostor"))
	if got := req.Body["Name"]; got != "real" {
		t.Errorf("body Name = %v, want real", got)
	}
	if req.Path != "/schedules/real" {
		t.Errorf("path = %q, want /schedules/real", req.Path)
	}

	req = PutEvents([]Entry{{Opt("source", "shop")}}, Opt("entries", "bogus"))
	if _, ok := req.Body["Entries"].([]map[string]any); !ok {
		t.Errorf("Entries was clobbered by an option: %v", req.Body["Entries"])
	}
}
