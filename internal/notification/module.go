package notification

import "go.uber.org/fx"

// Module wires the status notifier for dependency injection.
var Module = fx.Provide(NewStatusNotifier)
