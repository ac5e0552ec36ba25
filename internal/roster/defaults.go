package roster

import "time"

// Group tokens used by the default plan
const (
	GroupSurgery       = "SUR_ANY"
	GroupOrthopedics   = "ORTHO_ANY"
	GroupUrology       = "URO_ANY"
	GroupENT           = "ENT_ANY"
	GroupObGyn         = "OBGYN_ANY"
	GroupOphthalmology = "EYE_ANY"
	GroupMaxillofacial = "MAXILO_ANY"
)

var everyWeek = []int{1, 2, 3, 4}

func allday(doctors ...string) Rule {
	return Rule{Doctors: doctors, When: WhenAllDay, Weeks: everyWeek}
}

// Default returns the embedded hospital roster the service ships with.
// Deployments replace it with their own YAML file.
func Default() Config {
	return Config{
		Weekdays: map[time.Weekday][]RoomPlan{
			time.Monday: {
				{Room: "OR1", Rules: []Rule{
					{Doctors: []string{"นพ.สุริยา คุณาชน"}, When: WhenAllDay, Weeks: []int{1}},
					{Doctors: []string{"พญ.รัฐพร ตั้งเพียร"}, When: WhenAllDay, Weeks: []int{2}},
					{Doctors: []string{"พญ.พิชัย สุวัฒนพูนลาภ"}, When: WhenAllDay, Weeks: []int{3}},
					{Doctors: []string{"นพ.ธนวัฒน์ พันธุ์พรหม"}, When: WhenAllDay, Weeks: []int{4}},
				}},
				{Room: "OR2", Rules: []Rule{allday("นพ.ณัฐพงศ์ ศรีโพนทอง")}},
				{Room: "OR3", Rules: []Rule{allday("พญ.พิรุณยา แสนวันดี")}},
				{Room: "OR5", Rules: []Rule{allday(GroupObGyn)}},
				{Room: "OR6", Rules: []Rule{allday(GroupObGyn)}},
				{Room: "OR8", Rules: []Rule{allday("พญ.สีกชมพู ตั้งสัตยาธิษฐาน")}},
			},
			time.Tuesday: {
				{Room: "OR1", Rules: []Rule{allday("พญ.สายฝน บรรณจิตร์")}},
				{Room: "OR2", Rules: []Rule{allday("นพ.ชัชพล องค์โฆษิต")}},
				{Room: "OR3", Rules: []Rule{
					{Doctors: []string{"พญ.สุภาภรณ์ พิณพาทย์"}, When: WhenMorning, Weeks: everyWeek},
					{Doctors: []string{"ทพญ.อรุณนภา คิสารัง"}, When: WhenAfternoon, Weeks: everyWeek},
				}},
				{Room: "OR5", Rules: []Rule{allday(GroupObGyn)}},
				{Room: "OR6", Rules: []Rule{allday("นพ.พิชัย สุวัฒนพูนลาภ")}},
				{Room: "OR8", Rules: []Rule{allday("พญ.สาวิตรี ถนอมวงศ์ไทย")}},
			},
			time.Wednesday: {
				{Room: "OR1", Rules: []Rule{allday("นพ.สุริยา คุณาชน")}},
				{Room: "OR2", Rules: []Rule{allday("นพ.วิษณุ ผูกพันธ์")}},
				{Room: "OR3", Rules: []Rule{allday(ClosedToken)}},
				{Room: "OR5", Rules: []Rule{allday(GroupObGyn)}},
				{Room: "OR6", Rules: []Rule{allday("พญ.รัฐพร ตั้งเพียร")}},
				{Room: "OR8", Rules: []Rule{allday("พญ.นันท์นภัส ชีวะเกรียงไกร")}},
			},
			time.Thursday: {
				{Room: "OR1", Rules: []Rule{
					{Doctors: []string{"พญ.สายฝน บรรณจิตร์"}, When: WhenMorning, Weeks: everyWeek},
					{Doctors: []string{"นพ.ชัชพล องค์โฆษิต"}, When: WhenAfternoon, Weeks: []int{1, 3}},
					{Doctors: []string{"นพ.ณัฐพงศ์ ศรีโพนทอง", "นพ.วิษณุ ผูกพันธ์"}, When: WhenAfternoon, Weeks: []int{2, 4}},
				}},
				{Room: "OR2", Rules: []Rule{allday("นพ.อำนาจ อนันต์วัฒนกุล")}},
				{Room: "OR3", Rules: []Rule{
					{Doctors: []string{"นพ.วรวิช พลเวียงธรรม"}, When: WhenMorning, Weeks: everyWeek},
					{Doctors: []string{"ทพ.ฉลองรัฐ เดชา"}, When: WhenAfternoon, Weeks: everyWeek},
				}},
				{Room: "OR5", Rules: []Rule{allday(GroupObGyn)}},
				{Room: "OR6", Rules: []Rule{allday("นพ.ธนวัฒน์ พันธุ์พรหม")}},
				{Room: "OR8", Rules: []Rule{allday("พญ.ดวิษา อังศรีประเสริฐ")}},
			},
			time.Friday: {
				{Room: "OR1", Rules: []Rule{allday("พญ.สุภาภรณ์ พิณพาทย์")}},
				{Room: "OR2", Rules: []Rule{allday("นพ.กฤษฎา อิ้งอำพร")}},
				{Room: "OR3", Rules: []Rule{allday("พญ.สุทธิพร หมวดไธสง")}},
				{Room: "OR5", Rules: []Rule{allday(GroupObGyn)}},
				{Room: "OR6", Rules: []Rule{allday(ClosedToken)}},
				{Room: "OR8", Rules: []Rule{allday("นพ.สราวุธ สารีย์")}},
			},
		},
		Groups: map[string][]string{
			GroupSurgery: {
				"นพ.สุริยา คุณาชน",
				"นพ.ธนวัฒน์ พันธุ์พรหม",
				"พญ.สุภาภรณ์ พิณพาทย์",
				"พญ.รัฐพร ตั้งเพียร",
				"พญ.พิชัย สุวัฒนพูนลาภ",
			},
			GroupOrthopedics: {
				"นพ.ชัชพล องค์โฆษิต",
				"นพ.ณัฐพงศ์ ศรีโพนทอง",
				"นพ.อำนาจ อนันต์วัฒนกุล",
				"นพ.อภิชาติ ลักษณะ",
				"นพ.กฤษฎา อิ้งอำพร",
				"นพ.วิษณุ ผูกพันธ์",
			},
			GroupUrology: {
				"พญ.สายฝน บรรณจิตร์",
			},
			GroupENT: {
				"พญ.พิรุณยา แสนวันดี",
				"พญ.สุทธิพร หมวดไธสง",
				"นพ.วรวิช พลเวียงธรรม",
			},
			GroupObGyn: {
				"นพ.สุรจิตต์ นิมิตรวงษ์สกุล",
				"พญ.ขวัญตา ทุนประเทือง",
				"พญ.วัชราภรณ์ อนวัชชกุล",
				"พญ.รุ่งฤดี โขมพัตร",
				"พญ.ฐิติมน ชัยชนะทรัพย์",
			},
			GroupOphthalmology: {
				"นพ.สราวุธ สารีย์",
				"พญ.ดวิษา อังศรีประเสริฐ",
				"พญ.สาวิตรี ถนอมวงศ์ไทย",
				"พญ.สีกชมพู ตั้งสัตยาธิษฐาน",
				"พญ.นันท์นภัส ชีวะเกรียงไกร",
			},
			GroupMaxillofacial: {
				"ทพ.ฉลองรัฐ เดชา",
				"ทพญ.อรุณนภา คิสารัง",
			},
		},
		GroupLabels: map[string]string{
			GroupSurgery:       "ทีมศัลยกรรมทั่วไป",
			GroupOrthopedics:   "ทีมศัลยกรรมกระดูก",
			GroupUrology:       "ทีมระบบทางเดินปัสสาวะ",
			GroupENT:           "ทีมโสต ศอ นาสิก",
			GroupObGyn:         "ทีมสูติ-นรีเวช",
			GroupOphthalmology: "ทีมจักษุ",
			GroupMaxillofacial: "ทีมศัลยกรรมขากรรไกร",
			"CLOSE":            "ปิดห้อง",
			ClosedToken:        "ปิดห้อง",
		},
		Aliases: map[string]string{
			"นพ.สุริยะ คุณาชน":       "นพ.สุริยา คุณาชน",
			"นพ.สุริยา":              "นพ.สุริยา คุณาชน",
			"นพ.ธนวัฒน์":             "นพ.ธนวัฒน์ พันธุ์พรหม",
			"พญ.รัฐพร":               "พญ.รัฐพร ตั้งเพียร",
			"พญ.พิชัย":               "พญ.พิชัย สุวัฒนพูนลาภ",
			"พญ.พิริยา":              "พญ.พิรุณยา แสนวันดี",
			"พญ.พิรุณยา":             "พญ.พิรุณยา แสนวันดี",
			"พญ.สายฝน":               "พญ.สายฝน บรรณจิตร์",
			"นพ.ชัชพล":               "นพ.ชัชพล องค์โฆษิต",
			"นพ.ณัฐพงศ์":             "นพ.ณัฐพงศ์ ศรีโพนทอง",
			"นพ.วิษณุ":               "นพ.วิษณุ ผูกพันธ์",
			"นพ.กฤษฎา":               "นพ.กฤษฎา อิ้งอำพร",
			"พญ.สุภาภรณ์":            "พญ.สุภาภรณ์ พิณพาทย์",
			"พญ.สุทธิพร":             "พญ.สุทธิพร หมวดไธสง",
			"พญ.สุภาภรณ์ พิณพาท":     "พญ.สุภาภรณ์ พิณพาทย์",
			"นพ.วิษณุ ผูกพัน":        "นพ.วิษณุ ผูกพันธ์",
			"ทพญ.อรุณนภา คิสาลัง":    "ทพญ.อรุณนภา คิสารัง",
			"พญ.สีกชมพู ตั้งสัตยาธ":  "พญ.สีกชมพู ตั้งสัตยาธิษฐาน",
			"ทพญ.อรุณนภา":            "ทพญ.อรุณนภา คิสารัง",
			"ทพ.ฉลองรัฐ":             "ทพ.ฉลองรัฐ เดชา",
			"นพ.วรวิช":               "นพ.วรวิช พลเวียงธรรม",
		},
		Overrides: []OwnerOverride{
			{Weekday: time.Wednesday, Room: "OR1", Doctor: "นพ.สุริยา คุณาชน"},
			{Weekday: time.Wednesday, Room: "OR6", Doctor: "พญ.รัฐพร ตั้งเพียร"},
		},
	}
}
