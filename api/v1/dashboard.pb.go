package dashboardv1

type AuthenticateRequest struct {
	Email string `json:"email,omitempty"`
}

type AuthenticateResponse struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type ReportFilter struct {
	Email      string   `json:"email,omitempty"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
	Indicators []string `json:"indicators,omitempty"`
	Emails     []string `json:"emails,omitempty"`
}

type SummaryRequest struct {
	Filter *ReportFilter `json:"filter,omitempty"`
}

type SummaryResponse struct {
	TotalUniqueSessions int64    `json:"total_unique_sessions,omitempty"`
	PositiveMean        *float64 `json:"positive_mean,omitempty"`
	NegativeMean        *float64 `json:"negative_mean,omitempty"`
	CombinedMean        *float64 `json:"combined_mean,omitempty"`
}

type RollupRequest struct {
	Filter *ReportFilter `json:"filter,omitempty"`
	Period string        `json:"period,omitempty"`
}

type PeriodBucket struct {
	Period         string   `json:"period,omitempty"`
	UniqueSessions int64    `json:"unique_sessions,omitempty"`
	MeanRating     *float64 `json:"mean_rating,omitempty"`
}

type RollupResponse struct {
	Buckets []*PeriodBucket `json:"buckets,omitempty"`
}

type BreakdownRequest struct {
	Filter *ReportFilter `json:"filter,omitempty"`
	Period string        `json:"period,omitempty"`
}

type IndicatorBucket struct {
	Period         string   `json:"period,omitempty"`
	Indicator      string   `json:"indicator,omitempty"`
	UniqueSessions int64    `json:"unique_sessions,omitempty"`
	PositiveMean   *float64 `json:"positive_mean,omitempty"`
	NegativeMean   *float64 `json:"negative_mean,omitempty"`
}

type BreakdownResponse struct {
	Buckets []*IndicatorBucket `json:"buckets,omitempty"`
}

type FacetValuesRequest struct {
	Email string `json:"email,omitempty"`
	Facet string `json:"facet,omitempty"`
}

type FacetValuesResponse struct {
	Values []string `json:"values,omitempty"`
}

func (x *AuthenticateRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *SummaryRequest) GetFilter() *ReportFilter {
	if x != nil {
		return x.Filter
	}
	return nil
}

func (x *RollupRequest) GetFilter() *ReportFilter {
	if x != nil {
		return x.Filter
	}
	return nil
}

func (x *RollupRequest) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *BreakdownRequest) GetFilter() *ReportFilter {
	if x != nil {
		return x.Filter
	}
	return nil
}

func (x *BreakdownRequest) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *FacetValuesRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *FacetValuesRequest) GetFacet() string {
	if x != nil {
		return x.Facet
	}
	return ""
}
