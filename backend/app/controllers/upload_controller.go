package controllers

import "net/http"

// ServeUpload streams a stored upload back to the browser.
func (c *SoftwareController) ServeUpload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	data, ok, err := c.Softwares.GetUpload(r.Context(), name)
	if err != nil || !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	_, _ = w.Write(data)
}
