// Package service implements the unlock logic of a sealed page: the
// best-effort derived key cache and the flow that moves a page from locked
// to unlocked, either automatically from a cached key or from a password
// entered by the user.
//
// Every failure of a manual attempt is reported to the user with a single
// generic message, so a wrong password and corrupted data cannot be told
// apart. Failures of the automatic attempt are silent apart from removing
// the stale cache entry.
package service
