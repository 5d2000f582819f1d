// Package types defines the Database document, the record schema for each
// collection, and standard errors for the Casefile record store.
package types
