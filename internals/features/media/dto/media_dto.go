package dto

import (
	"kursusku_backend/internals/features/media/model"
	"kursusku_backend/internals/features/media/service"
)

// Listing hanya membawa filename opaque; URL asli tidak pernah keluar.
type SessionMediaItemDTO struct {
	SessionMediaID string           `json:"session_media_id"`
	Title          string           `json:"title"`
	Filename       string           `json:"filename"`
	Kind           service.FileKind `json:"kind,omitempty"` // hanya untuk files
	Order          int              `json:"order"`
}

type SessionMediaListDTO struct {
	Videos []SessionMediaItemDTO `json:"videos"`
	Files  []SessionMediaItemDTO `json:"files"`
}

type SignedVideoDTO struct {
	SignedURL string `json:"signed_url"`
}

type SignedFileDTO struct {
	SignedURL string                 `json:"signed_url"`
	Plan      service.ViewerPlanSpec `json:"plan"`
}

func ToSessionMediaListDTO(items []model.SessionMediaModel) SessionMediaListDTO {
	list := SessionMediaListDTO{
		Videos: []SessionMediaItemDTO{},
		Files:  []SessionMediaItemDTO{},
	}
	for _, m := range items {
		item := SessionMediaItemDTO{
			SessionMediaID: m.SessionMediaID.String(),
			Title:          m.SessionMediaTitle,
			Filename:       service.Filename(m.SessionMediaStoragePath),
			Order:          m.SessionMediaOrder,
		}
		if m.SessionMediaKind == model.SessionMediaKindVideo {
			list.Videos = append(list.Videos, item)
		} else {
			item.Kind = service.Classify(m.SessionMediaStoragePath)
			list.Files = append(list.Files, item)
		}
	}
	return list
}
