// Package environment names the deployment environment the client runs in
// and carries it through context.Context.
package environment
