package i18n

var catalog = map[string]map[string]string{
	"en": {
		"Step.io":                      "Step.io",
		"Add New Task":                 "Add New Task",
		"My settings":                  "My settings",
		"Weekly Pinned":                "Weekly Pinned",
		"View all":                     "View all",
		"Add new weekly pin":           "Add new weekly pin",
		"Today's schedule":             "Today's schedule",
		"Task Title":                   "Task Title",
		"Description":                  "Description",
		"Time":                         "Time",
		"Date":                         "Date",
		"Category":                     "Category",
		"Cancel":                       "Cancel",
		"Add Task":                     "Add Task",
		"Edit Task":                    "Edit Task",
		"Update Task":                  "Update Task",
		"Delete":                       "Delete",
		"Settings":                     "Settings",
		"Close":                        "Close",
		"All Pinned Tasks":             "All Pinned Tasks",
		"Account Settings":             "Account Settings",
		"Notifications":                "Notifications",
		"Privacy":                      "Privacy",
		"Help & Support":               "Help & Support",
		"Logout":                       "Logout",
		"Upgrade to Premium":           "Upgrade to Premium",
		"Categories":                   "Categories",
		"Add New Category":             "Add New Category",
		"Category Name":                "Category Name",
		"Color":                        "Color",
		"Add Category":                 "Add Category",
		"Edit Category":                "Edit Category",
		"Update Category":              "Update Category",
		"No categories yet":            "No categories yet",
		"active categories":            "active categories",
		"Change Music":                 "Change Music",
		"Search music...":              "Search music...",
		"No tasks scheduled for today": "No tasks scheduled for today",
		"Personal":                     "Personal",
		"Work":                         "Work",
		"Health":                       "Health",
		"Other":                        "Other",
		"Completed":                    "Completed",
		"Add":                          "Add",
		"Edit":                         "Edit",
		"Save":                         "Save",
		"Yes":                          "Yes",
		"No":                           "No",
		"Confirm":                      "Confirm",
		"Are you sure?":                "Are you sure?",
		"Language":                     "Language",
		"English":                      "English",
		"Indonesian":                   "Indonesian",
		"Events":                       "Events",
		"Add Event":                    "Add Event",
		"Edit Event":                   "Edit Event",
		"Profile":                      "Profile",
		"Menu":                         "Menu",
		"Signed in as %s":              "Signed in as %s",
		"%d tasks":                     "%d tasks",
		"Tasks":                        "Tasks",
	},
	"id": {
		"Step.io":                      "Step.io",
		"Add New Task":                 "Tambah Tugas Baru",
		"My settings":                  "Pengaturan saya",
		"Weekly Pinned":                "Tugas Tersemat Mingguan",
		"View all":                     "Lihat semua",
		"Add new weekly pin":           "Tambahkan tugas mingguan baru",
		"Today's schedule":             "Jadwal hari ini",
		"Task Title":                   "Judul Tugas",
		"Description":                  "Deskripsi",
		"Time":                         "Waktu",
		"Date":                         "Tanggal",
		"Category":                     "Kategori",
		"Cancel":                       "Batal",
		"Add Task":                     "Tambah Tugas",
		"Edit Task":                    "Edit Tugas",
		"Update Task":                  "Perbarui Tugas",
		"Delete":                       "Hapus",
		"Settings":                     "Pengaturan",
		"Close":                        "Tutup",
		"All Pinned Tasks":             "Semua Tugas Tersemat",
		"Account Settings":             "Pengaturan Akun",
		"Notifications":                "Notifikasi",
		"Privacy":                      "Privasi",
		"Help & Support":               "Bantuan & Dukungan",
		"Logout":                       "Keluar",
		"Upgrade to Premium":           "Tingkatkan ke Premium",
		"Categories":                   "Kategori",
		"Add New Category":             "Tambah Kategori Baru",
		"Category Name":                "Nama Kategori",
		"Color":                        "Warna",
		"Add Category":                 "Tambah Kategori",
		"Edit Category":                "Edit Kategori",
		"Update Category":              "Perbarui Kategori",
		"No categories yet":            "Belum ada kategori",
		"active categories":            "kategori aktif",
		"Change Music":                 "Ganti Musik",
		"Search music...":              "Cari musik...",
		"No tasks scheduled for today": "Tidak ada tugas untuk hari ini",
		"Personal":                     "Pribadi",
		"Work":                         "Pekerjaan",
		"Health":                       "Kesehatan",
		"Other":                        "Lainnya",
		"Completed":                    "Selesai",
		"Add":                          "Tambah",
		"Edit":                         "Edit",
		"Save":                         "Simpan",
		"Yes":                          "Ya",
		"No":                           "Tidak",
		"Confirm":                      "Konfirmasi",
		"Are you sure?":                "Apakah Anda yakin?",
		"Language":                     "Bahasa",
		"English":                      "Inggris",
		"Indonesian":                   "Indonesia",
		"Events":                       "Acara",
		"Add Event":                    "Tambah Acara",
		"Edit Event":                   "Edit Acara",
		"Profile":                      "Profil",
		"Menu":                         "Menu",
		"Signed in as %s":              "Masuk sebagai %s",
		"%d tasks":                     "%d tugas",
		"Tasks":                        "Tugas",
	},
}
