package catalog

// Seed returns the built-in demo listings used when the store is empty.
func Seed() []JobRecord {
	return []JobRecord{
		{
			Title:      "【急募】ホールスタッフ",
			Time:       "12/1 21:00 〜 23:30",
			FullTime:   "12月1日(月) 21:00 〜 23:30",
			Place:      "渋谷駅 徒歩5分",
			Price:      FormatPrice(4279),
			Color:      "#E24A4A",
			Urgent:     true,
			BeginnerOK: true,
			Description: "接客業務、オーダー取り、配膳、レジ対応などをお願いします。" +
				"未経験の方でも丁寧にお教えします。",
			Notes:    "・遅刻厳禁です。\n・派手なネイル、髪色は不可です。",
			Address:  "東京都渋谷区道玄坂2-10-7",
			ShopName: "居酒屋 やまと 渋谷店",
			Items:    []string{"印鑑", "メモ帳、筆記用具", "動きやすい靴"},
			Conditions: []string{
				"18歳以上(高校生不可)",
				"清潔感のある服装",
			},
			Reviews: []Review{
				{User: "さとう", Date: "2025/11/02", Text: "店長さんが優しくて働きやすかったです。"},
				{User: "たなか", Date: "2025/10/18", Text: "忙しい時間帯もスタッフ同士で助け合える職場でした。"},
			},
			HasOtherDates: true,
		},
		{
			Title:       "キッチン補助募集",
			Time:        "12/1 18:00 〜 22:00",
			Place:       "新宿三丁目駅 徒歩3分",
			Price:       FormatPrice(4800),
			Color:       "#50C878",
			Description: "簡単な盛り付け、食器洗浄、調理補助をお願いします。",
			ShopName:    "ビストロ ルミエール",
			Items:       []string{"エプロン"},
		},
		{
			Title:      "簡単な品出し作業",
			Time:       "12/2 9:00 〜 13:00",
			FullTime:   "12月2日(火) 9:00 〜 13:00",
			Place:      "池袋駅 徒歩7分",
			Price:      FormatPrice(4100),
			Color:      "#4A90D9",
			BeginnerOK: true,
			Notes:      "動きやすい服装でお越しください。",
			Address:    "東京都豊島区南池袋1-28-1",
			Conditions: []string{
				"未経験歓迎",
			},
			HasOtherDates: true,
		},
		{
			Title:       "イベント運営スタッフ",
			Time:        "12/3 10:00 〜 18:00",
			Place:       "恵比寿駅 徒歩10分",
			Price:       FormatPrice(9600),
			Color:       "#E8A33D",
			Urgent:      true,
			Description: "お客様のご案内、会場の設営・撤去作業をお願いします。",
			Reviews: []Review{
				{User: "すずき", Date: "2025/11/20", Text: "1日だけでしたが楽しく働けました。"},
			},
		},
		{
			Title:       "カフェ店員募集",
			Time:        "12/4 8:00 〜 12:00",
			FullTime:    "12月4日(木) 8:00 〜 12:00",
			Place:       "目黒駅 徒歩2分",
			Price:       FormatPrice(4500),
			Color:       "#9B59B6",
			Description: "コーヒーの提供、軽食の調理、清掃をお願いします。",
			ShopName:    "カフェ コトリ",
			Items:       []string{"筆記用具"},
		},
	}
}
