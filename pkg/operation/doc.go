/*
Package operation formats the files of a directory tree.

	+-------------+
	|    Match    |
	| (doublestar)|
	+------+------+
	       |
	+------+------+
	|   Format    |
	| (Formatter) |
	+------+------+
	       |
	+------+------+
	|    Write    |
	|  (status)   |
	+-------------+

🔄 Flow:
1. Files are selected from Root by Files and Exclude patterns
2. Each file is run through the Formatter, Concurrency files at a time
3. Changed files are written in place, or mirrored into Output
4. Results are tracked in a status.Manager and returned as a Report

In Check mode nothing is written and changed files are reported as
"would change".
*/
package operation
