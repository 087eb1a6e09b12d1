// Package log provides secure logging that redacts credentials and hash
// material before it reaches the log output.
package log
