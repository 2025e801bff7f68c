package business

// FormInfo is the static knowledge-base entry for one return form.
type FormInfo struct {
	ID           FormID   `json:"id"`
	Name         string   `json:"name"`
	Eligibility  []string `json:"eligibility"`
	CannotFile   []string `json:"cannot_file,omitempty"`
	Documents    []string `json:"documents"`
	DownloadLink string   `json:"download_link"`
}
