package location

type District struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type Province struct {
	Code      int        `json:"code"`
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

type Ward struct {
	Code         int    `json:"code"`
	Name         string `json:"name"`
	DistrictCode int    `json:"district_code"`
}
