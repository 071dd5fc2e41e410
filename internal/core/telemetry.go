package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanAuthMiddleware     TraceSpanName = "auth_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal      MetricName = "requests_total"
	MetricHttpRequestDuration    MetricName = "request_duration_seconds"
	MetricShiftsStartedTotal     MetricName = "shifts_started_total"
	MetricShiftsClosedTotal      MetricName = "shifts_closed_total"
	MetricShiftConflictsTotal    MetricName = "shift_conflicts_total"
	MetricJournalAppendFailTotal MetricName = "journal_append_failures_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelStore    MetricLabelName = "store"
	MetricLabelType     MetricLabelName = "type"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

// ─── Shift domain trace meta ───────────────────────────────────────────────────

// 供 ShiftService.StartShift 使用
type TraceShiftStartMeta struct {
	TenantID   string `trace:"shift.tenant_id,omitempty"`
	StoreID    string `trace:"shift.store_id"`
	EmployeeID string `trace:"shift.employee_id"`
	ShiftID    string `trace:"shift.id,omitempty"`
	Seq        int64  `trace:"shift.seq,omitempty"`
	TaskCount  int    `trace:"shift.task_count,omitempty"`
	Conflict   bool   `trace:"shift.conflict"`
}

// 供 ShiftService.CloseShift 使用
type TraceShiftCloseMeta struct {
	ShiftID      string  `trace:"shift.id,omitempty"`
	StoreID      string  `trace:"shift.store_id,omitempty"`
	EmployeeID   string  `trace:"shift.employee_id,omitempty"`
	Cash         float64 `trace:"shift.cash"`
	Card         float64 `trace:"shift.card"`
	Online       float64 `trace:"shift.online"`
	CheckCount   int     `trace:"shift.check_count"`
	GuestCount   int     `trace:"shift.guest_count"`
	FromOverride bool    `trace:"shift.from_override"`
	OrderCount   int     `trace:"shift.order_count"`
}

// 供 TaskService.Toggle 使用
type TraceTaskToggleMeta struct {
	ShiftID   string `trace:"task.shift_id"`
	TaskID    string `trace:"task.id"`
	Completed bool   `trace:"task.completed"`
	NoOp      bool   `trace:"task.noop"`
}

// 供 EventService.Append / ListForShift 使用
type TraceJournalMeta struct {
	ShiftID string `trace:"journal.shift_id,omitempty"`
	Type    string `trace:"journal.event_type,omitempty"`
	Count   int    `trace:"journal.count,omitempty"`
	Op      string `trace:"journal.op"` // "append" / "list" / "problem"
}

// 供 Mongo shift lock 使用
type TraceShiftLockMeta struct {
	StoreID    string `trace:"lock.store_id"`
	EmployeeID string `trace:"lock.employee_id"`
	Acquired   bool   `trace:"lock.acquired"`
	TTLSec     int64  `trace:"lock.ttl_sec"`
	Op         string `trace:"lock.op"` // "acquire" / "release"
}

type TraceAdminListMeta struct {
	Page        int64          `trace:"list.page"`
	Size        int64          `trace:"list.size"`
	Status      string         `trace:"list.status,omitempty"`
	Filter      map[string]any `trace:"filter,omitempty"`
	ResultCount int            `trace:"result.count,omitempty"`
}

type TraceAuthMeta struct {
	EmployeeID string `trace:"auth.employee_id,omitempty"`
	TenantID   string `trace:"auth.tenant_id,omitempty"`
	Status     string `trace:"auth.status,omitempty"`
}
