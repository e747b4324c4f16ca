// Package eventsource registers event-log sources. Registration is an
// administrative, one-time operation with privilege semantics of its
// own, which is why it lives apart from the per-message logging path:
// it runs elevated, once, at install time, while logging runs
// unprivileged on every call.
package eventsource
