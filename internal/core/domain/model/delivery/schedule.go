package delivery

import "time"

// Schedule holds the timestamps of a delivery.
// EndLoadingTime is expected to precede ArrivalTime but this is not enforced,
// so TravelTime may be negative for inconsistent data.
type Schedule struct {
	startTime      time.Time
	endLoadingTime time.Time
	arrivalTime    time.Time
}

// NewSchedule creates a Schedule from the start of loading, the end of loading
// and the arrival timestamps.
func NewSchedule(startTime, endLoadingTime, arrivalTime time.Time) Schedule {
	return Schedule{
		startTime:      startTime,
		endLoadingTime: endLoadingTime,
		arrivalTime:    arrivalTime,
	}
}

// StartTime returns the start of the loading period.
func (s Schedule) StartTime() time.Time {
	return s.startTime
}

// EndLoadingTime returns the end of the loading period.
func (s Schedule) EndLoadingTime() time.Time {
	return s.endLoadingTime
}

// ArrivalTime returns the arrival timestamp.
func (s Schedule) ArrivalTime() time.Time {
	return s.arrivalTime
}

// TravelTime returns the gap between the end of loading and the arrival.
// Like time.Time.Sub it saturates at about ±292 years; use TravelMinutes for
// gaps that may exceed that.
func (s Schedule) TravelTime() time.Duration {
	return s.arrivalTime.Sub(s.endLoadingTime)
}

// TravelMinutes returns the gap between the end of loading and the arrival in minutes.
// Unlike TravelTime it does not saturate.
func (s Schedule) TravelMinutes() float64 {
	seconds := s.arrivalTime.Unix() - s.endLoadingTime.Unix()
	nanos := s.arrivalTime.Nanosecond() - s.endLoadingTime.Nanosecond()
	return float64(seconds)/60 + float64(nanos)/float64(time.Minute)
}
