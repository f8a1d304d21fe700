package gtfs

// Operator is a transit agency as listed by transit/operators.
type Operator struct {
	ID                     string `json:"Id" csv:"id"`
	Name                   string `json:"Name" csv:"name"`
	ShortName              string `json:"ShortName" csv:"short_name"`
	SiriOperatorRef        string `json:"SiriOperatorRef" csv:"siri_operator_ref"`
	TimeZone               string `json:"TimeZone" csv:"time_zone"`
	DefaultLanguage        string `json:"DefaultLanguage" csv:"default_language"`
	ContactTelephoneNumber string `json:"ContactTelephoneNumber" csv:"contact_telephone_number"`
	WebSite                string `json:"WebSite" csv:"web_site"`
	PrimaryMode            string `json:"PrimaryMode" csv:"primary_mode"`
	PrivateCode            string `json:"PrivateCode" csv:"private_code"`
	Monitored              bool   `json:"Monitored" csv:"monitored"`
	OtherModes             string `json:"OtherModes" csv:"other_modes"`
}

// Route is a row of routes.txt.
type Route struct {
	RouteID        int    `csv:"route_id"`
	AgencyID       string `csv:"agency_id"`
	RouteShortName string `csv:"route_short_name"`
	RouteLongName  string `csv:"route_long_name"`
	RouteDesc      string `csv:"route_desc"`
	RouteType      string `csv:"route_type"`
	RouteURL       string `csv:"route_url"`
	RouteColor     string `csv:"route_color"`
	RouteTextColor string `csv:"route_text_color"`
}

// Stop is a row of stops.txt.
type Stop struct {
	StopID             int     `csv:"stop_id"`
	StopCode           string  `csv:"stop_code"`
	StopName           string  `csv:"stop_name"`
	StopLat            float64 `csv:"stop_lat"`
	StopLon            float64 `csv:"stop_lon"`
	ZoneID             string  `csv:"zone_id"`
	StopDesc           string  `csv:"stop_desc"`
	StopURL            string  `csv:"stop_url"`
	LocationType       string  `csv:"location_type"`
	ParentStation      string  `csv:"parent_station"`
	StopTimezone       string  `csv:"stop_timezone"`
	WheelchairBoarding string  `csv:"wheelchair_boarding"`
	PlatformCode       string  `csv:"platform_code"`
}

// StopTime is a row of stop_times.txt. Arrival and departure times are kept as
// the raw HH:MM:SS text since GTFS allows hours past 24.
type StopTime struct {
	TripID            int     `csv:"trip_id"`
	ArrivalTime       string  `csv:"arrival_time"`
	DepartureTime     string  `csv:"departure_time"`
	StopID            int     `csv:"stop_id"`
	StopSequence      int     `csv:"stop_sequence"`
	StopHeadsign      string  `csv:"stop_headsign"`
	PickupType        string  `csv:"pickup_type"`
	DropOffType       string  `csv:"drop_off_type"`
	ShapeDistTraveled float64 `csv:"shape_dist_traveled"`
	Timepoint         string  `csv:"timepoint"`
}

// Trip is a row of trips.txt.
type Trip struct {
	RouteID              int    `csv:"route_id"`
	ServiceID            int    `csv:"service_id"`
	TripID               int    `csv:"trip_id"`
	TripHeadsign         string `csv:"trip_headsign"`
	DirectionID          int    `csv:"direction_id"`
	BlockID              int    `csv:"block_id"`
	ShapeID              int    `csv:"shape_id"`
	TripShortName        string `csv:"trip_short_name"`
	BikesAllowed         string `csv:"bikes_allowed"`
	WheelchairAccessible string `csv:"wheelchair_accessible"`
}

// CalendarAttribute is a row of calendar_attributes.txt.
type CalendarAttribute struct {
	ServiceID          int    `csv:"service_id"`
	ServiceDescription string `csv:"service_description"`
}

// Calendar is a row of calendar.txt. Day columns are 0 or 1, dates are YYYYMMDD.
type Calendar struct {
	ServiceID int `csv:"service_id"`
	Monday    int `csv:"monday"`
	Tuesday   int `csv:"tuesday"`
	Wednesday int `csv:"wednesday"`
	Thursday  int `csv:"thursday"`
	Friday    int `csv:"friday"`
	Saturday  int `csv:"saturday"`
	Sunday    int `csv:"sunday"`
	StartDate int `csv:"start_date"`
	EndDate   int `csv:"end_date"`
}

// Direction is a row of directions.txt.
type Direction struct {
	RouteID       int    `csv:"route_id"`
	DirectionID   int    `csv:"direction_id"`
	DirectionName string `csv:"direction_name"`
}
