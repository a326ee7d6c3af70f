// Package models defines the core domain models for Marklist.
//
// # Models
//
//   - Item: a single to-do entry with its text and completion flag
//   - NewItem: the input accepted when creating an Item
//
// Items form a flat collection. There are no relationships between them and
// no edit operation: an Item is created, listed, and eventually deleted.
//
// # Validation
//
// NewItem.Validate is the single place write-time rules are enforced. Storage
// backends assume the input they receive has already passed it.
package models
