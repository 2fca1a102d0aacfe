// Package auth decides whether a username/password pair matches a record
// of the credential file.
//
// The credential file is a plain flatfile table, first column is the
// username, second column is either the password itself or its bcrypt
// digest depending on the mode. The file is re-read on every attempt, so
// there is nothing to invalidate when a user is added, at the cost of one
// full file scan per login.
//
// Usernames are compared with a constant-time check so an adversary cannot
// probe which usernames exist by measuring response times. The bcrypt
// check does its own constant-time digest comparison. What is NOT hidden
// is the difference between "no such user" (no hash work at all) and
// "user found, wrong password" (one full bcrypt run). Closing that gap
// would need a dummy verification on the miss path and nobody asked for
// it yet, so the short-circuit stays.
//
// Duplicate usernames are legal in the file, the first row wins. An empty
// username or password never authorizes, not even against a row that also
// has an empty cell, rows that lost cells to mangling never authorize
// either.
package auth
