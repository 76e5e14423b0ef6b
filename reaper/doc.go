// Package reaper runs the snapshot scan that kills every process working
// inside a directory subtree.
//
// A Scanner enumerates the process directory once, resolves each process's
// working directory, applies the subtree boundary rule and sends SIGKILL to
// every match after printing "Killing process <id>". The scan is strictly
// sequential. Processes that cannot be introspected are skipped without
// output, signal failures are counted and ignored, and nothing is retried.
//
// The scan never signals the process running it, even when its own working
// directory lies inside the target.
package reaper
