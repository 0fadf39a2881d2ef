package dto

type UploadAudioResponse struct {
	Url  string `json:"url"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}
