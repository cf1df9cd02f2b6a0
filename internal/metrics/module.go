package metrics

import "go.uber.org/fx"

// Module provides the store metrics registry.
var Module = fx.Provide(NewStoreMetrics)
