package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UdhaariStatus represents how much of a credit entry has been repaid
type UdhaariStatus int

const (
	UdhaariStatusPending UdhaariStatus = 0
	UdhaariStatusPartial UdhaariStatus = 1
	UdhaariStatusPaid    UdhaariStatus = 2
)

func (s UdhaariStatus) String() string {
	names := [...]string{"pending", "partial", "paid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

func (s UdhaariStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *UdhaariStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = UdhaariStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = UdhaariStatusPending
	case "partial":
		*s = UdhaariStatusPartial
	case "paid":
		*s = UdhaariStatusPaid
	}
	return nil
}

func (s UdhaariStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *UdhaariStatus) Scan(value interface{}) error {
	if value == nil {
		*s = UdhaariStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = UdhaariStatus(v)
	case int:
		*s = UdhaariStatus(v)
	}
	return nil
}
