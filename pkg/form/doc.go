// Package form implements the form controller shared by every Takaful form.
//
// A Controller owns one form instance: its field values, one error message
// per field, a form-level error, and a submission status that moves
// idle → submitting → settled → idle. Editing a field clears that field's
// error immediately; validation runs over all fields only when Submit is
// called. Submit issues at most one request per attempt, refuses to start
// while another attempt is in flight, resets the form on success and keeps
// the entered values on failure.
//
// Failures are split in two. Errors implementing Rejection (a non-2xx
// response) surface the server's detail message when there is one, or the
// generic "submit failed" message otherwise. Any other error is treated as a
// transport failure and surfaces the "unexpected error" message. Messages are
// resolved through a Localizer.
//
// Close cancels an in-flight submission; a result that arrives afterwards is
// discarded without touching the controller state.
package form
