package config

import "go.uber.org/fx"

// Module contributes the loaded configuration to the fx graph.
var Module = fx.Provide(Load)
