package order

import "testing"

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		token string
		want  Strategy
	}{
		{"entity", StrategyEntity},
		{"fetch-join", StrategyFetchJoin},
		{"paged-batch", StrategyPagedBatch},
		{"dto", StrategyDTO},
		{"dto-batch", StrategyDTOBatch},
		{"flat", StrategyFlat},
		{" DTO-Batch ", StrategyDTOBatch},
	}
	for _, c := range cases {
		got, err := ParseStrategy(c.token)
		if err != nil {
			t.Errorf("ParseStrategy(%q) error = %v", c.token, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseStrategy(%q) = %s, want %s", c.token, got, c.want)
		}
	}

	if _, err := ParseStrategy("v7"); err != ErrUnknownStrategy {
		t.Errorf("ParseStrategy(unknown) error = %v, want ErrUnknownStrategy", err)
	}
}

func TestSupportsPaging(t *testing.T) {
	for _, s := range []Strategy{StrategyEntity, StrategyPagedBatch, StrategyDTO, StrategyDTOBatch} {
		if !s.SupportsPaging() {
			t.Errorf("%s.SupportsPaging() = false, want true", s)
		}
	}
	for _, s := range []Strategy{StrategyFetchJoin, StrategyFlat} {
		if s.SupportsPaging() {
			t.Errorf("%s.SupportsPaging() = true, want false", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if got, err := ParseStatus("order"); err != nil || got != StatusOrder {
		t.Errorf("ParseStatus(order) = %v, %v", got, err)
	}
	if got, err := ParseStatus("CANCEL"); err != nil || got != StatusCancel {
		t.Errorf("ParseStatus(CANCEL) = %v, %v", got, err)
	}
	if _, err := ParseStatus("SHIPPED"); err != ErrUnknownStatus {
		t.Errorf("ParseStatus(SHIPPED) error = %v, want ErrUnknownStatus", err)
	}
}

func TestListQueryValidate(t *testing.T) {
	valid := ListQuery{Strategy: StrategyDTOBatch, Page: &Page{Offset: 0, Limit: 100}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	unknown := ListQuery{Strategy: "v7"}
	if err := unknown.Validate(); err != ErrUnknownStrategy {
		t.Errorf("Validate(unknown strategy) error = %v, want ErrUnknownStrategy", err)
	}

	// Paging with a collapsing strategy must fail before any query.
	for _, s := range []Strategy{StrategyFetchJoin, StrategyFlat} {
		q := ListQuery{Strategy: s, Page: &Page{Offset: 0, Limit: 10}}
		if err := q.Validate(); err != ErrPagingUnsupported {
			t.Errorf("Validate(%s with paging) error = %v, want ErrPagingUnsupported", s, err)
		}
		// Without paging the same strategies are fine.
		q.Page = nil
		if err := q.Validate(); err != nil {
			t.Errorf("Validate(%s without paging) error = %v, want nil", s, err)
		}
	}

	badOffset := ListQuery{Strategy: StrategyDTO, Page: &Page{Offset: -1, Limit: 10}}
	if err := badOffset.Validate(); err != ErrInvalidPage {
		t.Errorf("Validate(offset=-1) error = %v, want ErrInvalidPage", err)
	}
	badLimit := ListQuery{Strategy: StrategyDTO, Page: &Page{Offset: 0, Limit: 0}}
	if err := badLimit.Validate(); err != ErrInvalidPage {
		t.Errorf("Validate(limit=0) error = %v, want ErrInvalidPage", err)
	}
}
