package descriptor

// Entry - 옵션 ID와 프롬프트용 설명 문구
type Entry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Table - 닫힌 옵션 목록. 모르는 ID는 Default로 처리 (에러 없음)
type Table struct {
	Name    string
	Default string
	Entries []Entry
}

// Resolve - ID를 설명 문구로 변환
func (t *Table) Resolve(id string) string {
	for _, e := range t.Entries {
		if e.ID == id {
			return e.Description
		}
	}
	return t.Default
}

// IDs - 등록 순서대로 ID 목록
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		ids = append(ids, e.ID)
	}
	return ids
}
