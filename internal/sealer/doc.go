// Package sealer turns a document into a password-locked page and reads
// such pages back.
//
// A sealed page is the host template with two script blocks added before
// </body>: a JSON block holding the derivation parameters and the
// ciphertext, and the browser script that unlocks the page. The viewer reads
// the same JSON block through [ParsePage].
package sealer
