// Package navigation names the client's screens and defines the Navigator
// collaborator that forms call after a successful submission.
package navigation
