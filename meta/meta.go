// meta/meta.go
package meta

// DEFAULT_PLAYERS defines the number of seats when none is requested.
const DEFAULT_PLAYERS = 2

// DEFAULT_AXES defines the number of board axes for a standard match.
const DEFAULT_AXES = 4

// DEFAULT_AXIS_SIZE defines the length of each axis for a standard match.
const DEFAULT_AXIS_SIZE = 8

// DEFAULT_LISTEN defines the HTTP listen address for --serve.
const DEFAULT_LISTEN = ":8080"

// UPDATE_BUFFER defines the capacity of the engine's update feed.
const UPDATE_BUFFER = 64
