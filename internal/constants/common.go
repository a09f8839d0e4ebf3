package constants

// ServiceName identifies this service in structured logs
const ServiceName = "financing-api"

// Deployment stages
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// DefaultCurrency is the currency every price and subscription is created in.
const DefaultCurrency = "usd"

// CustomerSourceTag marks customers created through the financing form in
// processor metadata.
const CustomerSourceTag = "financing-form"

// IsValidStage reports whether stage is a recognized deployment stage.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	}
	return false
}
