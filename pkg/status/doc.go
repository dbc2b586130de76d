/*
Package status manages file storage and status tracking for richtypo runs.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Tracked |
	| (Storage) |           |  Files  |
	+-----------+           +---------+

🎯 Purpose:
- Reads source files and writes formatted ones atomically
- Tracks the outcome of every file (unchanged, formatted, created, failed)
- Reports progress through zerolog

🔄 Flow:
1. The operation package reads a file through a Manager rooted at the source
2. The formatted content is written through a Manager rooted at the output
3. Each outcome is tracked and can be listed when the run is over

🔍 Example:

	src := status.New("content", logger)
	dst := status.New("dist", logger)

	data, err := src.ReadFile(ctx, "index.html")
	if err != nil {
		return err
	}
	if err := dst.WriteFile(ctx, "index.html", format(data)); err != nil {
		return err
	}
	dst.TrackFile(ctx, "index.html", status.FileInfo{Path: "index.html", Status: status.StatusNew})
*/
package status
