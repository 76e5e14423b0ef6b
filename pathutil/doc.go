// Package pathutil canonicalizes directory arguments and decides subtree membership.
//
// Every comparison in killbysubdir happens between canonical paths: absolute,
// with `.`, `..` and symbolic links already resolved. Mixing canonical and
// non-canonical forms would let a process hide behind a symlink, so both the
// target directory and each process working directory pass through the same
// resolution before they are compared.
//
// # Canonicalization
//
// A relative argument is joined onto the current working directory first and
// the result is resolved with filepath.EvalSymlinks. The path must exist.
//
//	target, err := pathutil.Canonicalize("./build")
//	if err != nil {
//	    return err // fatal: nothing meaningful can be matched
//	}
//
// # Subtree Matching
//
// IsWithin applies the boundary rule: a candidate is inside the target only
// when the target is followed by a separator or the end of the string.
//
//	pathutil.IsWithin("/srv/app", "/srv/app")       // true
//	pathutil.IsWithin("/srv/app", "/srv/app/logs")  // true
//	pathutil.IsWithin("/srv/app", "/srv/application") // false
//	pathutil.IsWithin("/", "/anything")             // true
package pathutil
