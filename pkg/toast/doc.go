// Package toast keeps the short-lived notifications shown after form
// actions, such as "your suggestion was sent". A single Queue lives in the
// app context; entries expire after a TTL and the oldest is dropped when
// the visible limit is reached.
package toast
