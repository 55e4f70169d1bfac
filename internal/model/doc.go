package model

// Package model defines domain data structures shared across the bot: media
// kinds, quality tiers, per-chat requests, and produced artifacts. Structures
// carry no behavior beyond state predicates and are mutated only by the
// session layer that owns them.
