// Package browser opens URLs in the user's default web browser.
//
// Opening a browser is a side action: callers treat any error from an Opener as
// a reason to print a fallback hint, never as a failure of their own.
package browser
