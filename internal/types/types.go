// README: Common value types shared across modules.
package types

// ID is an opaque entity identifier.
type ID string
