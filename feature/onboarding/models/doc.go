// Package models mirrors the onboarding tables the loader writes to.
//
// The production schema (ss_t_* tables, keys, foreign-key constraints) is
// owned outside this repository; these structs record its shape so tests can
// materialize an equivalent schema with AutoMigrate and so the natural keys
// are visible in one place as unique indexes.
package models
