package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixLiveSession  CachePrefix = "IF_SESSION_"
	CachePrefixAirportStats CachePrefix = "IF_AIRPORT_"
	CachePrefixUserStats    CachePrefix = "IF_USER_"
	CachePrefixWeather      CachePrefix = "WX_"
)

// Review states shared by PIREPs and registrations
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Aircraft states
const (
	AircraftActive      = "active"
	AircraftMaintenance = "maintenance"
	AircraftRetired     = "retired"
)

// Review decisions
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)
