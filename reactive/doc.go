// Package reactive provides the small observable primitives the shortcut
// manager exposes its state through.
//
//   - Value[T]: a single observable value with get/set/update/subscribe
//   - Channel[T]: an unordered multicast notifier with subscribe/emit
//
// Both are fully synchronous: Set, Update and Emit invoke every listener
// before returning. Mutation is serialized behind a mutex so state
// transitions never interleave partially, but listeners run outside the
// lock so a listener may subscribe or unsubscribe re-entrantly.
package reactive
