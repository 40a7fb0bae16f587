package api

const (
	infoPrefix = "/-"

	// HealthRoute denotes the route / URI path to the health endpoint
	HealthRoute = infoPrefix + "/health"
	// InfoRoute denotes the route / URI path to the info endpoint
	InfoRoute = infoPrefix + "/info"
	// ReadyRoute denotes the route / URI path to the ready endpoint
	ReadyRoute = infoPrefix + "/ready"

	apiPrefix = "/v1"

	// AccessIngressRoute denotes the route to the ingress access lookup
	AccessIngressRoute = apiPrefix + "/access/ingress/{ipaddress}"
	// AccessEgressRoute denotes the route to the egress access lookup
	AccessEgressRoute = apiPrefix + "/access/egress/{ipaddress}"

	// HandleQueryParam is the name of the query parameter carrying the model handle
	HandleQueryParam = "handle"
)
