package service

import (
	"heyrube-be/internal/dto"
	"heyrube-be/internal/entity"
)

func toCheckboxPayloads(items []entity.CheckboxItem) []dto.CheckboxItemPayload {
	if items == nil {
		return nil
	}
	out := make([]dto.CheckboxItemPayload, 0, len(items))
	for _, item := range items {
		out = append(out, dto.CheckboxItemPayload{Text: item.Text, Checked: item.Checked})
	}
	return out
}

func toCheckboxItems(payloads []dto.CheckboxItemPayload) []entity.CheckboxItem {
	if payloads == nil {
		return nil
	}
	out := make([]entity.CheckboxItem, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, entity.CheckboxItem{Text: p.Text, Checked: p.Checked})
	}
	return out
}

func toEntryResponse(e *entity.JournalEntry) *dto.EntryResponse {
	return &dto.EntryResponse{
		Id:            e.Id,
		JournalId:     e.JournalId,
		UserId:        e.UserId,
		CardType:      string(e.CardType),
		Title:         e.Title,
		Content:       e.Content,
		CheckboxItems: toCheckboxPayloads(e.CheckboxItems),
		Mood:          e.Mood,
		Pinned:        e.Pinned,
		DisplayOrder:  e.DisplayOrder,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toEntryResponses(entries []*entity.JournalEntry) []*dto.EntryResponse {
	out := make([]*dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

func toJournalResponse(j *entity.Journal, entries []*entity.JournalEntry) *dto.JournalResponse {
	res := &dto.JournalResponse{
		Id:        j.Id,
		Title:     j.Title,
		Tags:      j.Tags,
		UserId:    j.UserId,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
	if entries != nil {
		res.Entries = toEntryResponses(entries)
	}
	return res
}

func toLinkResponse(l *entity.Link) *dto.LinkResponse {
	return &dto.LinkResponse{
		Id:         l.Id,
		UserId:     l.UserId,
		SourceType: string(l.SourceType),
		SourceId:   l.SourceId,
		TargetType: string(l.TargetType),
		TargetId:   l.TargetId,
		Label:      l.Label,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
