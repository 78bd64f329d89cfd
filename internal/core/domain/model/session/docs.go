// Package session models operators signed in to the console.
//
// A Session binds a console-issued identifier to the bearer token returned by
// the remote API. Only operators with the admin role may hold a session.
package session
