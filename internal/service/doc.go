// Package service provides the provider registry for the computation
// service.
//
// The registry maintains a catalog of service providers and routes tool
// execution to them by tool-ID prefix.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(contfracProvider)
//	result, err := registry.Execute(ctx, "contfrac.expand", params, nil)
package service
