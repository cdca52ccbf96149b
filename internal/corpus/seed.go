package corpus

// seedCSV is the authentic sample slice of the ZRP incident data set.
// The generator fills the remainder up to the configured target count
// with synthetic records drawn from the same locations and crime types.
const seedCSV = `Date,Crime Type,Location,Latitude,Longitude,Status,Summary
2024-05-19,Arson,Bindura,-17.3019,31.3306,Closed,Arson reported in bindura.
2024-05-23,Assault,Marondera,-18.1853,31.5514,Open,Assault reported in marondera.
2024-01-17,Housebreaking,Chinhoyi,-17.3667,30.2,Open,Housebreaking reported in chinhoyi.
2024-07-26,Arson,Mutare,-18.975,32.67,Open,Arson reported in mutare.
2024-06-05,Bribery,Bulawayo CBD,-20.1508,28.5795,Open,Bribery reported in bulawayo cbd.
2024-09-01,Stock Theft,Zvishavane,-20.3333,30.0667,Open,Stock Theft reported in zvishavane.
2024-02-08,Smuggling,Bulawayo CBD,-20.1508,28.5795,Under Investigation,Smuggling reported in bulawayo cbd.
2024-06-29,Housebreaking,Chinhoyi,-17.3667,30.2,Under Investigation,Housebreaking reported in chinhoyi.
2024-05-16,Vandalism,Chinhoyi,-17.3667,30.2,Open,Vandalism reported in chinhoyi.
2024-03-13,Murder,Chinhoyi,-17.3667,30.2,Under Investigation,Murder reported in chinhoyi.
2024-09-13,Vandalism,Mutare,-18.975,32.67,Closed,Vandalism reported in mutare.
2024-01-08,Rape,Marondera,-18.1853,31.5514,Under Investigation,Rape reported in marondera.
2024-07-20,Theft,Zvishavane,-20.3333,30.0667,Open,Theft reported in zvishavane.
2024-03-07,Fraud,Masvingo,-20.0637,30.8277,Open,Fraud reported in masvingo.
2024-04-06,Theft,Masvingo,-20.0637,30.8277,Open,Theft reported in masvingo.
2024-03-20,Theft,Victoria Falls,-17.9333,25.8333,Under Investigation,Theft reported in victoria falls.
2024-01-16,Murder,Marondera,-18.1853,31.5514,Closed,Murder reported in marondera.
2024-04-11,Arson,Chinhoyi,-17.3667,30.2,Closed,Arson reported in chinhoyi.
2024-01-21,Murder,Kwekwe,-18.9167,29.8167,Open,Murder reported in kwekwe.
2024-05-15,Drug Possession,Gweru,-19.45,29.8167,Closed,Drug Possession reported in gweru.
2024-09-28,Cybercrime,Beitbridge,-22.2167,30.0,Under Investigation,Cybercrime reported in beitbridge.
2024-09-04,Stock Theft,Kwekwe,-18.9167,29.8167,Closed,Stock Theft reported in kwekwe.
2024-02-15,Housebreaking,Victoria Falls,-17.9333,25.8333,Closed,Housebreaking reported in victoria falls.
2024-03-22,Vandalism,Gweru,-19.45,29.8167,Open,Vandalism reported in gweru.
2024-09-17,Theft,Bindura,-17.3019,31.3306,Under Investigation,Theft reported in bindura.
2024-06-10,Corruption,Kadoma,-18.3333,29.9167,Under Investigation,Corruption reported in kadoma.
2024-07-27,Vandalism,Kadoma,-18.3333,29.9167,Closed,Vandalism reported in kadoma.
2024-06-03,Cybercrime,Gweru,-19.45,29.8167,Under Investigation,Cybercrime reported in gweru.
2024-03-03,Robbery,Chitungwiza,-18.0127,31.0756,Open,Robbery reported in chitungwiza.
2024-09-29,Drug Possession,Kadoma,-18.3333,29.9167,Open,Drug Possession reported in kadoma.
2024-06-26,Arson,Gweru,-19.45,29.8167,Under Investigation,Arson reported in gweru.
2024-05-24,Murder,Zvishavane,-20.3333,30.0667,Under Investigation,Murder reported in zvishavane.
2024-08-15,Stock Theft,Masvingo,-20.0637,30.8277,Closed,Stock Theft reported in masvingo.
2024-05-25,Housebreaking,Victoria Falls,-17.9333,25.8333,Open,Housebreaking reported in victoria falls.
2024-02-01,Smuggling,Beitbridge,-22.2167,30.0,Closed,Smuggling reported in beitbridge.
2024-10-13,Theft,Chinhoyi,-17.3667,30.2,Under Investigation,Theft reported in chinhoyi.
2024-02-13,Drug Possession,Bulawayo CBD,-20.1508,28.5795,Under Investigation,Drug Possession reported in bulawayo cbd.
2024-07-16,Drug Possession,Zvishavane,-20.3333,30.0667,Under Investigation,Drug Possession reported in zvishavane.
2024-04-13,Robbery,Zvishavane,-20.3333,30.0667,Under Investigation,Robbery reported in zvishavane.
2024-03-31,Bribery,Chinhoyi,-17.3667,30.2,Open,Bribery reported in chinhoyi.
2024-03-12,Corruption,Chinhoyi,-17.3667,30.2,Under Investigation,Corruption reported in chinhoyi.
2024-08-15,Corruption,Victoria Falls,-17.9333,25.8333,Open,Corruption reported in victoria falls.
2024-06-29,Fraud,Chitungwiza,-18.0127,31.0756,Under Investigation,Fraud reported in chitungwiza.
2024-08-27,Stock Theft,Beitbridge,-22.2167,30.0,Under Investigation,Stock Theft reported in beitbridge.
2024-06-10,Rape,Victoria Falls,-17.9333,25.8333,Open,Rape reported in victoria falls.
2024-09-09,Robbery,Chitungwiza,-18.0127,31.0756,Closed,Robbery reported in chitungwiza.
2024-05-11,Bribery,Marondera,-18.1853,31.5514,Closed,Bribery reported in marondera.
2024-01-03,Murder,Victoria Falls,-17.9333,25.8333,Closed,Murder reported in victoria falls.
2024-06-28,Cybercrime,Mutare,-18.975,32.67,Under Investigation,Cybercrime reported in mutare.
2024-07-26,Arson,Kwekwe,-18.9167,29.8167,Open,Arson reported in kwekwe.
2024-06-09,Theft,Chitungwiza,-18.0127,31.0756,Closed,Theft reported in chitungwiza.
2024-06-11,Corruption,Chinhoyi,-17.3667,30.2,Closed,Corruption reported in chinhoyi.
2024-03-26,Cybercrime,Zvishavane,-20.3333,30.0667,Under Investigation,Cybercrime reported in zvishavane.
2024-04-06,Assault,Harare Central,-17.825,31.053,Under Investigation,Assault reported in harare central.
2024-01-19,Arson,Kadoma,-18.3333,29.9167,Under Investigation,Arson reported in kadoma.
2024-01-25,Stock Theft,Chitungwiza,-18.0127,31.0756,Closed,Stock Theft reported in chitungwiza.
2024-04-26,Fraud,Bulawayo CBD,-20.1508,28.5795,Under Investigation,Fraud reported in bulawayo cbd.
2024-01-22,Smuggling,Kwekwe,-18.9167,29.8167,Under Investigation,Smuggling reported in kwekwe.
2024-09-26,Kidnapping,Victoria Falls,-17.9333,25.8333,Under Investigation,Kidnapping reported in victoria falls.
2024-05-11,Drug Possession,Gweru,-19.45,29.8167,Open,Drug Possession reported in gweru.
2024-02-25,Rape,Victoria Falls,-17.9333,25.8333,Closed,Rape reported in victoria falls.
2024-05-09,Arson,Chitungwiza,-18.0127,31.0756,Under Investigation,Arson reported in chitungwiza.
2024-09-08,Murder,Chinhoyi,-17.3667,30.2,Under Investigation,Murder reported in chinhoyi.
2024-10-17,Fraud,Marondera,-18.1853,31.5514,Closed,Fraud reported in marondera.
2024-05-18,Smuggling,Victoria Falls,-17.9333,25.8333,Open,Smuggling reported in victoria falls.
2024-06-17,Theft,Zvishavane,-20.3333,30.0667,Open,Theft reported in zvishavane.
2024-08-02,Rape,Beitbridge,-22.2167,30.0,Closed,Rape reported in beitbridge.
2024-04-05,Assault,Kwekwe,-18.9167,29.8167,Closed,Assault reported in kwekwe.
2024-02-28,Theft,Gweru,-19.45,29.8167,Under Investigation,Theft reported in gweru.
2024-06-24,Assault,Bulawayo CBD,-20.1508,28.5795,Open,Assault reported in bulawayo cbd.
2024-08-10,Cybercrime,Chinhoyi,-17.3667,30.2,Under Investigation,Cybercrime reported in chinhoyi.
2024-04-09,Bribery,Beitbridge,-22.2167,30.0,Under Investigation,Bribery reported in beitbridge.
2024-03-03,Drug Possession,Bulawayo CBD,-20.1508,28.5795,Closed,Drug Possession reported in bulawayo cbd.
2024-03-24,Murder,Mutare,-18.975,32.67,Under Investigation,Murder reported in mutare.
2024-10-08,Housebreaking,Gweru,-19.45,29.8167,Under Investigation,Housebreaking reported in gweru.
2024-07-30,Fraud,Masvingo,-20.0637,30.8277,Closed,Fraud reported in masvingo.
2024-09-13,Kidnapping,Bindura,-17.3019,31.3306,Closed,Kidnapping reported in bindura.
2024-07-25,Smuggling,Chitungwiza,-18.0127,31.0756,Closed,Smuggling reported in chitungwiza.
2024-02-14,Arson,Bulawayo CBD,-20.1508,28.5795,Under Investigation,Arson reported in bulawayo cbd.
2024-03-26,Murder,Gweru,-19.45,29.8167,Closed,Murder reported in gweru.
2024-05-03,Theft,Harare Central,-17.825,31.053,Under Investigation,Theft reported in harare central.
2024-10-14,Robbery,Harare Central,-17.825,31.053,Under Investigation,Robbery reported in harare central.
2024-10-23,Robbery,Harare Central,-17.825,31.053,Open,Robbery reported in harare central.
2024-03-06,Vandalism,Harare Central,-17.825,31.053,Closed,Vandalism reported in harare central.
2024-03-13,Cybercrime,Harare Central,-17.825,31.053,Open,Cybercrime reported in harare central.
2024-04-05,Fraud,Harare Central,-17.825,31.053,Closed,Fraud reported in harare central.
2024-06-23,Rape,Harare Central,-17.825,31.053,Open,Rape reported in harare central.
2024-05-14,Murder,Harare Central,-17.825,31.053,Under Investigation,Murder reported in harare central.
2024-01-22,Assault,Harare Central,-17.825,31.053,Closed,Assault reported in harare central.
2024-01-18,Kidnapping,Hwange,-18.3667,26.5,Open,Kidnapping reported in hwange.
2024-01-29,Assault,Mutare,-18.975,32.67,Closed,Assault reported in mutare.
2024-03-18,Bribery,Masvingo,-20.0637,30.8277,Open,Bribery reported in masvingo.
2024-05-08,Drug Possession,Hwange,-18.3667,26.5,Under Investigation,Drug Possession reported in hwange.
2024-07-25,Arson,Hwange,-18.3667,26.5,Open,Arson reported in hwange.
2024-10-09,Robbery,Hwange,-18.3667,26.5,Under Investigation,Robbery reported in hwange.
2024-06-28,Rape,Hwange,-18.3667,26.5,Closed,Rape reported in hwange.
2024-02-22,Smuggling,Hwange,-18.3667,26.5,Closed,Smuggling reported in hwange.
2024-01-11,Theft,Bindura,-17.3019,31.3306,Under Investigation,Theft reported in bindura.
2024-07-08,Murder,Bindura,-17.3019,31.3306,Open,Murder reported in bindura.
2024-01-11,Rape,Bindura,-17.3019,31.3306,Closed,Rape reported in bindura.
2024-04-04,Bribery,Bindura,-17.3019,31.3306,Under Investigation,Bribery reported in bindura.
2024-03-28,Stock Theft,Victoria Falls,-17.9333,25.8333,Open,Stock Theft reported in victoria falls.
2024-02-18,Robbery,Gweru,-19.45,29.8167,Under Investigation,Robbery reported in gweru.
2024-04-01,Rape,Beitbridge,-22.2167,30.0,Open,Rape reported in beitbridge.
2024-04-12,Robbery,Beitbridge,-22.2167,30.0,Open,Robbery reported in beitbridge.
2024-01-07,Robbery,Bulawayo CBD,-20.1508,28.5795,Under Investigation,Robbery reported in bulawayo cbd.
2024-03-31,Robbery,Kadoma,-18.3333,29.9167,Open,Robbery reported in kadoma.
2024-01-01,Robbery,Mutare,-18.975,32.67,Closed,Robbery reported in mutare.
2024-10-16,Robbery,Masvingo,-20.0637,30.8277,Closed,Robbery reported in masvingo.
2024-09-05,Robbery,Chinhoyi,-17.3667,30.2,Under Investigation,Robbery reported in chinhoyi.
2024-06-22,Fraud,Chinhoyi,-17.3667,30.2,Under Investigation,Fraud reported in chinhoyi.
2024-04-28,Murder,Kadoma,-18.3333,29.9167,Closed,Murder reported in kadoma.
2024-06-25,Rape,Kadoma,-18.3333,29.9167,Closed,Rape reported in kadoma.
2024-02-05,Smuggling,Kadoma,-18.3333,29.9167,Open,Smuggling reported in kadoma.
2024-05-06,Theft,Masvingo,-20.0637,30.8277,Open,Theft reported in masvingo.
2024-03-10,Kidnapping,Masvingo,-20.0637,30.8277,Closed,Kidnapping reported in masvingo.
2024-02-12,Murder,Mutare,-18.975,32.67,Closed,Murder reported in mutare.
2024-06-19,Theft,Mutare,-18.975,32.67,Open,Theft reported in mutare.
2024-03-24,Kidnapping,Mutare,-18.975,32.67,Under Investigation,Kidnapping reported in mutare.
2024-08-05,Kidnapping,Gweru,-19.45,29.8167,Open,Kidnapping reported in gweru.
2024-07-08,Rape,Gweru,-19.45,29.8167,Closed,Rape reported in gweru.
2024-04-29,Murder,Gweru,-19.45,29.8167,Closed,Murder reported in gweru.
2024-01-06,Arson,Gweru,-19.45,29.8167,Open,Arson reported in gweru.
2024-07-22,Rape,Bulawayo CBD,-20.1508,28.5795,Open,Rape reported in bulawayo cbd.
2024-03-18,Smuggling,Bulawayo CBD,-20.1508,28.5795,Open,Smuggling reported in bulawayo cbd.
2024-10-22,Assault,Bulawayo CBD,-20.1508,28.5795,Closed,Assault reported in bulawayo cbd.
2024-02-01,Housebreaking,Bulawayo CBD,-20.1508,28.5795,Under Investigation,Housebreaking reported in bulawayo cbd.
2024-10-07,Housebreaking,Chitungwiza,-18.0127,31.0756,Open,Housebreaking reported in chitungwiza.
2024-08-09,Assault,Chitungwiza,-18.0127,31.0756,Closed,Assault reported in chitungwiza.
2024-07-10,Corruption,Chitungwiza,-18.0127,31.0756,Open,Corruption reported in chitungwiza.
2024-06-09,Stock Theft,Chitungwiza,-18.0127,31.0756,Closed,Stock Theft reported in chitungwiza.
2024-10-10,Robbery,Chitungwiza,-18.0127,31.0756,Under Investigation,Robbery reported in chitungwiza.
2024-09-22,Kidnapping,Kwekwe,-18.9167,29.8167,Closed,Kidnapping reported in kwekwe.
2024-04-23,Fraud,Kwekwe,-18.9167,29.8167,Closed,Fraud reported in kwekwe.
2024-10-08,Murder,Kwekwe,-18.9167,29.8167,Closed,Murder reported in kwekwe.
2024-06-24,Corruption,Kwekwe,-18.9167,29.8167,Closed,Corruption reported in kwekwe.
2024-01-23,Assault,Zvishavane,-20.3333,30.0667,Closed,Assault reported in zvishavane.
2024-04-20,Corruption,Zvishavane,-20.3333,30.0667,Closed,Corruption reported in zvishavane.
2024-01-09,Stock Theft,Zvishavane,-20.3333,30.0667,Closed,Stock Theft reported in zvishavane.
2024-04-28,Murder,Zvishavane,-20.3333,30.0667,Closed,Murder reported in zvishavane.
2024-09-10,Corruption,Beitbridge,-22.2167,30.0,Under Investigation,Corruption reported in beitbridge.
2024-06-18,Drug Possession,Beitbridge,-22.2167,30.0,Closed,Drug Possession reported in beitbridge.
2024-02-15,Bribery,Beitbridge,-22.2167,30.0,Open,Bribery reported in beitbridge.
2024-10-09,Arson,Beitbridge,-22.2167,30.0,Closed,Arson reported in beitbridge.
2024-08-11,Assault,Marondera,-18.1853,31.5514,Open,Assault reported in marondera.
2024-02-29,Housebreaking,Marondera,-18.1853,31.5514,Open,Housebreaking reported in marondera.
2024-09-13,Smuggling,Marondera,-18.1853,31.5514,Open,Smuggling reported in marondera.
2024-02-13,Drug Possession,Marondera,-18.1853,31.5514,Open,Drug Possession reported in marondera.
2024-05-14,Rape,Victoria Falls,-17.9333,25.8333,Under Investigation,Rape reported in victoria falls.
2024-04-27,Assault,Victoria Falls,-17.9333,25.8333,Under Investigation,Assault reported in victoria falls.
2024-06-22,Corruption,Victoria Falls,-17.9333,25.8333,Closed,Corruption reported in victoria falls.
2024-04-10,Fraud,Victoria Falls,-17.9333,25.8333,Under Investigation,Fraud reported in victoria falls.
2024-01-07,Cybercrime,Victoria Falls,-17.9333,25.8333,Under Investigation,Cybercrime reported in victoria falls.`
