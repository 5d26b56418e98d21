package jsonbank

// resourcePath builds the full path of a document or folder:
// "{project}/{folder/}{name}". An empty folder is omitted.
func resourcePath(project, folder, name string) string {
	if folder != "" {
		return project + "/" + folder + "/" + name
	}
	return project + "/" + name
}
