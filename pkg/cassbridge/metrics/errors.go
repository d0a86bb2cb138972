package metrics

import "fmt"

type metricsAlreadyRegistered struct {
	metricsName string
}

type metricsNotRegistered struct {
	metricsName string
}

func (e metricsAlreadyRegistered) Error() string {
	return fmt.Sprintf("metrics %v already registered", e.metricsName)
}

func (e metricsNotRegistered) Error() string {
	return fmt.Sprintf("metrics %v is not registered", e.metricsName)
}
