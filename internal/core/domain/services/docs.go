// Package services contains domain services: business logic that spans
// aggregates and does not naturally belong to a single entity.
//
// The shipping cost service computes job totals from package weights and
// provider rates using exact decimal arithmetic.
package services
