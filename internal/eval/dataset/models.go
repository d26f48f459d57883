package dataset

import "path/filepath"

// DiscPhotoRecord represents one labeled disc photo: the image to identify
// plus the ground-truth movie title.
type DiscPhotoRecord struct {
	// Primary key, usually the photo's original filename
	ID string `json:"id" parquet:"id"`

	// Path to the photo, absolute or relative to the dataset file
	ImagePath string `json:"image_path" parquet:"image_path"`

	// Ground-truth movie title
	Title string `json:"title" parquet:"title"`

	// Optional free-text notes (disc region, case vs disc shot, etc.)
	Notes string `json:"notes" parquet:"notes"`
}

// ResolveImagePath returns the record's image path resolved against the
// directory containing the dataset file when the path is relative.
func (r *DiscPhotoRecord) ResolveImagePath(datasetPath string) string {
	if filepath.IsAbs(r.ImagePath) {
		return r.ImagePath
	}
	return filepath.Join(filepath.Dir(datasetPath), r.ImagePath)
}
